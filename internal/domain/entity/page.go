package entity

import "encoding/base64"

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

func (s Screenshot) DataURI() string {
	return "data:image/" + s.Format + ";base64," + base64.StdEncoding.EncodeToString(s.Data)
}
