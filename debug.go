//go:build debugMallet
// +build debugMallet

package mallet

import (
	"log"
)

var debugging = true

func debugf(fmt string, args ...interface{}) {
	log.Printf(fmt, args...)
}
func debug(args ...interface{}) {
	log.Println(args...)
}
