package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/histories"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/taibf"
)

type Module struct {
	dscope.Module
	Engine    taibf.Module
	Sources   sources.Module
	Histories histories.Module
	Debugs    debugs.Module
}
