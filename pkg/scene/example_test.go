package scene_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snapline/pkg/scene"
)

func ExampleRunner_Run() {
	sc, err := scene.Decode(strings.NewReader(`
name = "grid drag"

[parent]
width = 400
height = 400

[grid]
enabled = true
cols = 4

[target]
id = "hero"
width = 100
height = 100

[controller]
kind = "drag"

[[step]]
kind = "down"

[[step]]
kind = "move"
x = 130
y = 130

[[step]]
kind = "up"
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	quiet := log.NewWithOptions(&strings.Builder{}, log.Options{Level: log.ErrorLevel})
	res, err := scene.NewRunner(quiet).Run(context.Background(), sc)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range res.Frames {
		fmt.Printf("%s: %d action(s), target at %v,%v\n", f.Step.Kind, len(f.Actions), f.Target.Left, f.Target.Top)
	}
	// Output:
	// down: 0 action(s), target at 0,0
	// move: 1 action(s), target at 100,100
	// up: 0 action(s), target at 100,100
}
