package main

// @title           Koppen Climate Lookup API
// @version         1.0
// @description     Nearest-point Köppen climate classification for geographic coordinates.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /
