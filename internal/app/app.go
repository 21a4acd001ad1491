package app

import "io"

// Application wires the immutable configuration into the estimator once
// at startup. Everything downstream treats it as read-only.
type Application struct {
	Config    Config
	Estimator *Estimator
	Logger    *Logger
}

func NewApplication(cfg Config, logOut io.Writer) *Application {
	return &Application{
		Config:    cfg,
		Estimator: NewEstimator(cfg),
		Logger:    NewLogger(logOut),
	}
}

// Device reports the configured default device profile.
func (a *Application) Device() DeviceProfile {
	d, _ := ParseDevice(a.Config.Device)
	return d
}
