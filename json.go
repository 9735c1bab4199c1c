package jvmdesc

import "encoding/json"

// JSON support: descriptors serialize as their wire strings, so they embed
// naturally in tooling manifests. Decoding goes through the validating
// parsers.

// MarshalJSON implements json.Marshaler for FieldDesc.
func (fd FieldDesc) MarshalJSON() ([]byte, error) {
	return json.Marshal(fd.DescriptorString())
}

// UnmarshalJSON implements json.Unmarshaler for FieldDesc.
func (fd *FieldDesc) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FieldOf(s)
	if err != nil {
		return err
	}
	*fd = parsed
	return nil
}

// MarshalJSON implements json.Marshaler for MethodTypeDesc.
func (d MethodTypeDesc) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.DescriptorString())
}

// UnmarshalJSON implements json.Unmarshaler for MethodTypeDesc.
func (d *MethodTypeDesc) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := OfDescriptor(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
