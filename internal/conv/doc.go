// Package conv provides small helpers to move loosely typed values between
// action inputs, tool arguments and table storage: JSON round-trip
// conversion, deep copies of JSON-like trees and pointer shortcuts.
package conv
