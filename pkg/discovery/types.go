package discovery

import (
	"errors"
	"time"
)

// Service constants for mDNS.
const (
	// ServiceType is the service type onboardable devices advertise.
	ServiceType = "_opent2t._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is advertised when a device does not specify one.
	DefaultPort = 8043
)

// TXT record key constants.
const (
	TXTKeyTranslator = "TP"    // Translator package name (required)
	TXTKeyDeviceID   = "DI"    // Device identifier (required)
	TXTKeyDeviceName = "DN"    // Device name (optional, user-configurable)
	TXTKeyBrand      = "brand" // Vendor/brand name (optional)
	TXTKeyModel      = "model" // Model name (optional)
	TXTKeyVersion    = "v"     // Contract version "major.minor" (optional)
)

// Timing constants.
const (
	// BrowseTimeout is the default timeout for browse operations.
	BrowseTimeout = 10 * time.Second
)

// MaxInstanceNameLen is the mDNS instance name length limit.
const MaxInstanceNameLen = 63

// Discovery errors.
var (
	ErrMissingRequired     = errors.New("missing required TXT record")
	ErrInvalidTXTRecord    = errors.New("invalid TXT record")
	ErrInstanceNameTooLong = errors.New("instance name too long")
)

// OnboardingInfo describes an onboardable device, as carried in its
// TXT records.
type OnboardingInfo struct {
	// Translator is the translator package that can wrap this device.
	Translator string

	// DeviceID identifies the device to its translator.
	DeviceID string

	// DeviceName is the user-visible device name.
	DeviceName string

	// Brand is the vendor/brand name.
	Brand string

	// Model is the model name.
	Model string

	// Version is the contract version the device implements, as
	// "major.minor". Empty means unspecified.
	Version string

	// Port is the port the device listens on (0 means DefaultPort).
	Port uint16
}

// CandidateService is a discovered onboardable device.
type CandidateService struct {
	// InstanceName is the mDNS instance name.
	InstanceName string

	// Host is the advertised hostname.
	Host string

	// Port is the advertised port.
	Port uint16

	// Addresses are the resolved IP addresses, as strings.
	Addresses []string

	// Translator is the translator package that can wrap this device.
	Translator string

	// DeviceID identifies the device to its translator.
	DeviceID string

	// DeviceName is the user-visible device name.
	DeviceName string

	// Brand is the vendor/brand name.
	Brand string

	// Model is the model name.
	Model string

	// Version is the contract version the device implements, as
	// "major.minor". Empty means unspecified.
	Version string
}

// OnboardingProps returns the candidate's onboarding properties in the
// shape translator factories consume.
func (s *CandidateService) OnboardingProps() map[string]any {
	props := map[string]any{
		"id":   s.DeviceID,
		"name": s.DeviceName,
	}
	if s.Host != "" {
		props["host"] = s.Host
	}
	if s.Port != 0 {
		props["port"] = s.Port
	}
	if len(s.Addresses) > 0 {
		props["addresses"] = s.Addresses
	}
	return props
}
