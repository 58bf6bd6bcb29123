// Package testsupport provides fixtures shared by package tests: a recording
// URL builder with predictable output and golden file helpers.
package testsupport
