// Package messages holds the in-app message feed that services write
// operation traces to and the UI reads back.
package messages
