package main

import (
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/shapes/shapecli"
)

func main() {
	xmain.Main(shapecli.Run)
}
