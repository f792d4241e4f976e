// Package loop provides the loop representation analysed for dependences and
// its detection from a parsed source file.
//
// Loop detection inspects the top-level statement of the file, which must be
// a single `for <var> in range(<args>):` loop. The loop parameters (index
// variable, range arguments and body) are extracted as written; bounds only
// become available once the range has been canonicalised to two arguments
// (see package normalise).
package loop
