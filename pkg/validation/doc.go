// Package validation holds the validator contract and the Result combinators
// used by form models. A Result is either valid or not valid with an ordered
// list of human-readable reasons; combining results concatenates reasons and
// stays valid only when every input is valid. Validators are pure and declare
// how absent values are treated, and transforming validators convert raw input
// (usually text) before handing it to a typed downstream validator.
package validation
