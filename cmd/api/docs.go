package main

// @title Weatherly API
// @version 1.0
// @description City search, reverse geocoding, approximate client location, weather forecasts and outfit advice.
// @description Successful responses are wrapped as {"data": ...}, failures as {"error": {"code", "message"}}.

// @contact.name API Support
// @contact.url https://github.com/fernandolucchesi/weatherly

// @host localhost:8080
// @BasePath /
// @schemes http
