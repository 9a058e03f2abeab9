// Package service holds the application layer on both ends of the
// control connection.
//
// The server side wires one controller per entity kind to the command
// manager: each controller parses captures, calls the model mutator and
// answers with the standard state-change echo. A changed value is
// broadcast to every client; an unchanged write is echoed to the
// initiator only; anything else is the error response.
//
// The client side exposes typed operations that submit exchanges,
// mirrors announced state into a local repository and publishes one
// typed event per state change on the notification bus.
package service
