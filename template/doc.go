// Package template derives reusable letter templates from finished letters
// and scores candidate templates against a letter's detected profile.
//
// Template derivation replaces literal user data (company, job title, the
// author's name) with typed {{placeholder}} variables. Substitution order is
// fixed — company, then position, then userName — so earlier replacements
// cannot be corrupted by later ones.
package template
