package tool

import "fmt"

// WeatherReport returns a canned forecast for location. There is no weather
// provider behind it.
func WeatherReport(location string) string {
	return fmt.Sprintf("the weather at location %s is sunny and 25C", location)
}
