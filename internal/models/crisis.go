package models

// CrisisResources maps a resource name to how to reach it.
type CrisisResources map[string]string
