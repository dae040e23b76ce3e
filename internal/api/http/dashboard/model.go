package dashboard

type ToggleProtectionRequest struct {
	Enabled *bool `json:"enabled"`
}

type AddBlockedDomainRequest struct {
	Domain string `json:"domain"`
}
