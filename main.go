package main

import "github.com/snipcheck/snipcheck/cmd/snipcheck"

func main() { snipcheck.Execute() }
