// Package hero is the data gateway between the UI and the heroes backend.
//
// Every operation issues exactly one request through a domain.Transport and
// writes one line to the domain.MessageLog. Failures never reach the caller:
// they are logged as "<operation> failed: <message>" and replaced with a
// fallback (an empty slice for lists, nil otherwise), so the UI keeps running
// with no data.
package hero
