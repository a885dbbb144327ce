package models

// Target is one device known to the master.
type Target struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// KeyExchangeRequest carries the client's public key to the master.
type KeyExchangeRequest struct {
	PublicKey string `json:"public_key"`
}

// KeyExchangeResponse carries the two components of the master's public key
// as decimal big-integer strings.
type KeyExchangeResponse struct {
	N string `json:"n"`
	G string `json:"g"`
}

// EncryptedTagRecord is one outbound tag write. When the channel is
// encrypted, Name and Value are independent ciphertext strings; otherwise
// they are plaintext.
type EncryptedTagRecord struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TagWriteBatch is one batch of tag writes tagged with a frame id. The frame
// id is a wraparound counter in [0, 255]; it identifies the batch, with no
// reuse guarantee beyond the wraparound.
type TagWriteBatch struct {
	FrameID uint8                `json:"frame_id"`
	Tags    []EncryptedTagRecord `json:"tags"`
}

// Ack is the master's generic confirmation for mutating calls.
type Ack struct {
	Success bool `json:"success"`
}

// StreamRequest toggles the device data stream.
type StreamRequest struct {
	Enabled bool `json:"enabled"`
}

// FrequencyRequest sets the device stream frequency in hertz.
type FrequencyRequest struct {
	Hertz int `json:"hertz"`
}

// VerboseRequest toggles the master's verbose reporting for a device.
type VerboseRequest struct {
	Enabled bool `json:"enabled"`
}

// CommandRequest carries one device command.
type CommandRequest struct {
	Command string `json:"command"`
}

// LoggingEnableRequest starts server-side logging at the given sampling
// period in milliseconds.
type LoggingEnableRequest struct {
	PeriodMS int64 `json:"period_ms"`
}
