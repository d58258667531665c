//go:build raycastdebug

package graphics

const debugChecks = true
