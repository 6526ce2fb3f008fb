package discovery

import (
	"fmt"
	"strings"

	"github.com/sanjaiganesh/opent2t/pkg/version"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeOnboardingTXT creates TXT records for onboarding discovery.
func EncodeOnboardingTXT(info *OnboardingInfo) TXTRecordMap {
	txt := make(TXTRecordMap)

	// Required fields
	txt[TXTKeyTranslator] = info.Translator
	txt[TXTKeyDeviceID] = info.DeviceID

	// Optional fields
	if info.DeviceName != "" {
		txt[TXTKeyDeviceName] = info.DeviceName
	}
	if info.Brand != "" {
		txt[TXTKeyBrand] = info.Brand
	}
	if info.Model != "" {
		txt[TXTKeyModel] = info.Model
	}
	if info.Version != "" {
		txt[TXTKeyVersion] = info.Version
	}

	return txt
}

// DecodeOnboardingTXT parses TXT records from onboarding discovery.
func DecodeOnboardingTXT(txt TXTRecordMap) (*OnboardingInfo, error) {
	info := &OnboardingInfo{}

	// Parse translator package (required)
	var ok bool
	info.Translator, ok = txt[TXTKeyTranslator]
	if !ok || info.Translator == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyTranslator)
	}

	// Parse device ID (required)
	info.DeviceID, ok = txt[TXTKeyDeviceID]
	if !ok || info.DeviceID == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyDeviceID)
	}

	// Optional fields
	info.DeviceName = txt[TXTKeyDeviceName]
	info.Brand = txt[TXTKeyBrand]
	info.Model = txt[TXTKeyModel]

	if v, ok := txt[TXTKeyVersion]; ok {
		if _, err := version.Parse(v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTXTRecord, TXTKeyVersion, err)
		}
		info.Version = v
	}

	return info, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value" strings.
// This format is commonly used by mDNS libraries.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty instance name", ErrInvalidTXTRecord)
	}
	if len(name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	return nil
}
