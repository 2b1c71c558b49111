// Package sms defines the contracts for sending SMS messages.
//
// The main purpose is to keep the rest of the application independent from a
// specific SMS provider. Use cases work with the SMS interface and Message
// payload; the concrete delivery mechanism (HTTP gateway API) is implemented
// elsewhere in this package.
package sms
