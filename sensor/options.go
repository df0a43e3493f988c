package sensor

import "periph.io/x/conn/v3/physic"

// Config holds the sensor configuration.
type Config struct {
	// Logger receives driver events (optional).
	Logger Logger

	// BusSpeed is the maximum SPI clock NewSPI connects at. The
	// sensors are specified up to 10 MHz.
	BusSpeed physic.Frequency
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		BusSpeed: 10 * physic.MegaHertz,
	}
}

// Option is a functional option for configuring the Sensor.
type Option func(*Config)

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	dev := sensor.New(conn, register.AS5047D, sensor.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithBusSpeed lowers the SPI clock used by NewSPI. Useful for long or
// noisy wiring. Values above 10 MHz or at zero are ignored. New ignores
// the setting entirely, since its connection is already established.
//
// Example:
//
//	dev, err := sensor.NewSPI(port, register.AS5048A,
//	    sensor.WithBusSpeed(1*physic.MegaHertz),
//	)
func WithBusSpeed(f physic.Frequency) Option {
	return func(c *Config) {
		if f > 0 && f <= 10*physic.MegaHertz {
			c.BusSpeed = f
		}
	}
}
