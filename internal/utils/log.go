// Package utils
package utils

import (
	"log"
	"os"
	"sync"
)

var (
	logger *log.Logger
	once   sync.Once
)

func GetLogger() *log.Logger {
	once.Do(func() {
		logger = log.New(os.Stdout, "CFMM Router: ", log.LstdFlags)
	})
	return logger
}
