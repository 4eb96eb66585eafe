// Command clickstart generates Click-based Python CLI projects.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorf("%v\n", err)
		os.Exit(1)
	}
}
