// Package common holds small helpers shared by the roster packages.
package common
