//go:build raycastdebug

package render

const debugChecks = true
