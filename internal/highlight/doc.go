// Package highlight maps token kinds to terminal styles.
//
// A Theme pairs each token kind with a tcell style, with a default style for
// unmapped kinds. Built-in themes are available by name, and custom themes
// load from YAML files keyed by kind name.
//
// Classification stops here: the package knows nothing about buffers or
// caches, it only answers "what style does this kind get".
package highlight
