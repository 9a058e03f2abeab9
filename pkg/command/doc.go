// Package command is the HLX command codec. For every (entity,
// operation) pair it owns a request composer and a response form: the
// composer renders the payload a controller sends, the form is the
// POSIX ERE both sides use to recognise the payload, with its declared
// capture count.
//
// The server emits the response form to acknowledge or announce a
// mutation; the client matches it both as the solicited response and as
// an unsolicited notification. For most mutators there is no distinct
// acknowledgement, the server echoes the new state in the standard
// notification form.
//
// Two protocol quirks are carried through on purpose: the reply to the
// infrared query QIRL is the plain IRL<d> notification, not a compound
// query reply, and balance travels in a discontinuous tagged form
// (L<n>, C, R<n>) while the model uses a continuous signed range.
package command
