// Package hospital defines the records listed by the clinic dashboards
// together with their search presets and input forms.
package hospital
