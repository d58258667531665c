//go:build !raycastdebug

package graphics

const debugChecks = false
