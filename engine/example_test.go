package engine_test

import (
	"context"
	"fmt"

	"github.com/clktmr/warp/engine"
	"github.com/clktmr/warp/regs"
	"github.com/clktmr/warp/sim"
)

func Example() {
	hw := sim.New(0x0100, regs.PackConfig(1, 0, true))
	e, err := engine.Init(sim.NewPlatform(hw))
	if err != nil {
		panic(err)
	}
	defer e.Close()

	e.SetCoordinatesAddress(0x3000_0000)
	e.SetCoordinatesCount(640 * 480)
	e.SetInputImageAddress(0x3040_0000)
	e.SetInputImageSize(640, 480)
	e.SetInputImagePitch(640)
	e.SetOutputImageAddress(0x3080_0000)
	e.SetOutputImageSize(640, 480)
	e.SetOutputImagePitch(640)
	e.RegisterISR(engine.IRQWarpFinished, func() {})
	e.SetEnabled(true)

	hw.FinishWarp() // done by hardware

	irq, err := e.Wait(context.Background())
	fmt.Println(irq == engine.IRQWarpFinished, err)
	// Output: true <nil>
}
