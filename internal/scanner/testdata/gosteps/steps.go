package gosteps

import "fmt"

// @step Given `I have {int} apples`
func HaveApples(count int) error {
	if count < 0 {
		return fmt.Errorf("cannot have %d apples", count)
	}
	return nil
}

// @step When `I eat {int} apples`
func EatApples(count int) error {
	return nil
}

// SayHello is a helper, not a step.
func SayHello() string {
	return "hello"
}
