package main

import (
	"txref.mleku.dev/lol"
)

var log, chk, errorf = lol.Main.Log, lol.Main.Check, lol.Main.Errorf
