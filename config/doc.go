// SPDX-License-Identifier: MIT

// Package config loads the batch settings of lvrank from YAML.
//
// Every field is optional; missing fields keep the values of Default.
// Unknown keys are rejected so a misspelled key is reported instead of
// being ignored. CLI flags are applied by the caller after Load.
package config
