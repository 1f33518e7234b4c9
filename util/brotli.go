package util

import (
	"bufio"
	"io"
	"os"

	"github.com/andybalholm/brotli"
)

// SaveBrotli 把上传的原始报告压缩归档
// DefaultCompression (级别 6) 是速度和压缩率的平衡点
func SaveBrotli(filePath string, data []byte) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	bufferedWriter := bufio.NewWriter(file)
	defer bufferedWriter.Flush()

	brWriter := brotli.NewWriterLevel(bufferedWriter, brotli.DefaultCompression)
	defer brWriter.Close()

	_, err = brWriter.Write(data)
	return err
}

// LoadBrotli 读回归档并解压，给不支持br的客户端用
func LoadBrotli(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(brotli.NewReader(file))
}
