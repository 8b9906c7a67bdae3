// Command chemtrans translates between chemical names and molecular formulas
// using PubChem.
//
// Usage:
//
//	chemtrans                      interactive prompt (default)
//	chemtrans lookup <text...>     one lookup; exit 0 = found, 1 = otherwise
//	chemtrans format <text...>     print digits as subscripts
//	chemtrans classify <text...>   print "formula" or "name"
//	chemtrans env                  list configuration environment variables
//	chemtrans version
//
// Configuration: --config, then CONFIG_PATH, then ./config.yaml, overridden
// by environment variables.
package main

import "os"

func main() {
	os.Exit(Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
