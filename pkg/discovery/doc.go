// Package discovery finds devices on the local network that can be
// onboarded through a translator. Devices advertise an mDNS service
// whose TXT records name the translator package that knows how to wrap
// them; controllers browse for those records and feed the results into
// translator.Registry.Create.
//
// The accessor never touches this package: dispatch itself performs no
// network I/O. Discovery is strictly an onboarding-time collaborator.
package discovery
