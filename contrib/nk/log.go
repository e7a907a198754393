package main

import (
	"github.com/inconshreveable/log15"
)

var log log15.Logger = log15.New("module", "main")
