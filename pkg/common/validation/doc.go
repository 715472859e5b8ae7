// Package validation provides common validation utilities for the helpers library.
package validation
