//go:build !debugMallet
// +build !debugMallet

package mallet

var debugging = false

func debugf(string, ...interface{}) {}
func debug(...interface{})          {}
