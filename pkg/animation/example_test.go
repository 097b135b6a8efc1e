package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/switchkit/pkg/animation"
	"github.com/go-drift/switchkit/pkg/graphics"
)

// This example drives a thumb position and track color from one controller.
func ExampleAnimationController() {
	duration := 300 * time.Millisecond
	controller := animation.NewAnimationController(duration)
	controller.Curve = animation.EaseOutSpring(duration, 0.7, 0.5)

	thumbX := animation.TweenFloat64(1, 51)
	track := animation.TweenColor(graphics.ColorWhite, graphics.ColorSystemGreen)

	controller.AddListener(func() {
		_ = thumbX.Transform(controller)
		_ = track.Transform(controller)
	})
	controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			fmt.Println("settled")
		}
	})

	controller.Forward()
	// The host steps tickers once per frame.
	animation.StepTickers()
	controller.Dispose()
}

// This example shows how to create a tween for basic interpolation.
func ExampleTween() {
	opacity := animation.TweenOpacity(0.0, 1.0)
	position := animation.TweenOffset(
		graphics.Offset{X: 0, Y: 0},
		graphics.Offset{X: 100, Y: 50},
	)

	fmt.Printf("Opacity at 0.5: %.1f\n", opacity.Evaluate(0.5))
	fmt.Printf("Opacity at 1.2: %.1f\n", opacity.Evaluate(1.2))
	fmt.Printf("Position at 1.0: (%.0f, %.0f)\n", position.Evaluate(1.0).X, position.Evaluate(1.0).Y)

	// Output:
	// Opacity at 0.5: 0.5
	// Opacity at 1.2: 1.0
	// Position at 1.0: (100, 50)
}

// This example shows the ease-out spring switch transitions use.
func ExampleEaseOutSpring() {
	curve := animation.EaseOutSpring(300*time.Millisecond, 0.7, 0.5)

	fmt.Printf("start %.2f\n", curve(0))
	fmt.Printf("end %.2f\n", curve(1))

	// Output:
	// start 0.00
	// end 1.00
}

// This example samples the spring used by switch transitions.
func ExampleSpringCurve() {
	curve := animation.SpringCurve(300*time.Millisecond, 0.7, 0.5)

	fmt.Printf("start %.2f\n", curve(0))
	fmt.Printf("end %.2f\n", curve(1))

	// Output:
	// start 0.00
	// end 1.00
}
