package commands

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/courier-org/courier-cli/internal/api"
)

// Manifest files are YAML. JSON works too since YAML is a superset, so a
// shipment exported from another tool can be fed straight back in.

type addressManifest struct {
	Line1   string `yaml:"line1"`
	Line2   string `yaml:"line2"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	Country string `yaml:"country"`
	Pincode string `yaml:"pincode"`
}

type partyManifest struct {
	Name    string          `yaml:"name"`
	Phone   string          `yaml:"phone"`
	Email   string          `yaml:"email"`
	Address addressManifest `yaml:"address"`
}

type shipmentManifest struct {
	Sender      partyManifest `yaml:"sender"`
	Receiver    partyManifest `yaml:"receiver"`
	PackageType string        `yaml:"packageType"`
	Weight      float64       `yaml:"weight"`
	Description string        `yaml:"description"`
}

type hubManifest struct {
	Hubs []struct {
		Code         string          `yaml:"code"`
		Name         string          `yaml:"name"`
		Location     string          `yaml:"location"`
		Address      addressManifest `yaml:"address"`
		ManagerName  string          `yaml:"managerName"`
		ManagerPhone string          `yaml:"managerPhone"`
		Capacity     int64           `yaml:"capacity"`
	} `yaml:"hubs"`
}

func (a addressManifest) toAPI() api.Address {
	return api.Address{
		Line1:   a.Line1,
		Line2:   a.Line2,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		Pincode: a.Pincode,
	}
}

func (p partyManifest) toAPI() api.Party {
	return api.Party{
		Name:    p.Name,
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address.toAPI(),
	}
}

// parseShipmentManifest decodes a shipment booking file.
func parseShipmentManifest(data []byte) (*api.CreatePackageRequest, error) {
	var m shipmentManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse shipment file: %w", err)
	}
	return &api.CreatePackageRequest{
		Sender:      m.Sender.toAPI(),
		Receiver:    m.Receiver.toAPI(),
		PackageType: m.PackageType,
		Weight:      m.Weight,
		Description: m.Description,
	}, nil
}

// parseHubManifest decodes a hub bulk-import file into creatable hubs.
func parseHubManifest(data []byte) ([]api.Hub, error) {
	var m hubManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse hub manifest: %w", err)
	}
	if len(m.Hubs) == 0 {
		return nil, fmt.Errorf("hub manifest contains no hubs")
	}

	hubs := make([]api.Hub, 0, len(m.Hubs))
	for i, h := range m.Hubs {
		if h.Code == "" || h.Name == "" {
			return nil, fmt.Errorf("hub %d: code and name are required", i+1)
		}
		hubs = append(hubs, api.Hub{
			Code:         h.Code,
			Name:         h.Name,
			Location:     h.Location,
			Address:      h.Address.toAPI(),
			ManagerName:  h.ManagerName,
			ManagerPhone: h.ManagerPhone,
			Capacity:     h.Capacity,
			Active:       true,
		})
	}
	return hubs, nil
}
