// nutrition-calc prints BMI, calorie, protein and water estimates.
// Usage: go run . demo
package main

import "lg/nutrition-calc/internal/cli"

func main() {
	cli.Execute()
}
