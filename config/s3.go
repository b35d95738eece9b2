package config

import "os"

// S3Config is optional: when no bucket is configured the finished audio is
// only kept on local disk and the S3 mirror is skipped.
type S3Config struct {
	BucketName string
}

func GetS3Config() *S3Config {
	return &S3Config{
		BucketName: os.Getenv("AUDIO_BUCKET_NAME"),
	}
}

func (c *S3Config) Enabled() bool {
	return c.BucketName != ""
}
