package domain

// AllProviders is the provider selection that passes every record.
const AllProviders = "all"

// AddNewProvider is the selector entry that asks for a new service to be connected.
// Selecting it resets the selection to AllProviders.
const AddNewProvider = "add-new"

type ProviderStatus string

const (
	ProviderConnected    ProviderStatus = "connected"
	ProviderDisconnected ProviderStatus = "disconnected"
)

func (s ProviderStatus) Valid() bool {
	return s == ProviderConnected || s == ProviderDisconnected
}

type CloudProvider struct {
	ID          string         // aws
	Name        string         // Amazon Web Services
	Status      ProviderStatus // connected
	Resources   int            // 247
	MonthlyCost float64        // 12450.89
	Services    []string       // EC2, S3, ...
}
