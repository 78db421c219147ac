// Package testsupport holds filesystem fixture helpers shared by tests.
package testsupport
