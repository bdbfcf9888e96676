package entity

// PickedImage is a local image selected by the user before submit.
type PickedImage struct {
	Name        string
	ContentType string
	Data        []byte
	Preview     ImagePreview
}

// ImagePreview is what a form shows for an attached image.
type ImagePreview struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Blurhash string `json:"blurhash"`
}

// UploadedImage is an image blob stored in object storage.
type UploadedImage struct {
	Path string
	URL  string
}
