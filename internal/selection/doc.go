// Package selection turns host input into the code selection a review works
// on: text already in memory, a reader such as stdin, or a line range of a
// file given as "path:start-end".
package selection
