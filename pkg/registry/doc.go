// Package registry defines the ordered list of JavaScript packages to
// embed. The order is semantically meaningful: it is both the
// processing order and the order in which generated content is
// appended to the bundle.
package registry
