package s3mark

import "encoding/json"

func ToJson(report Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

func FromJsonByteArray(jsonData []byte) (Report, error) {
	report := Report{}
	err := json.Unmarshal(jsonData, &report)
	return report, err
}
