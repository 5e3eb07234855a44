package s3mark

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"code.cloudfoundry.org/bytefmt"
)

// Operation kinds supported by the benchmark.
const (
	OperationUpload   = "upload"
	OperationDownload = "download"
)

const (
	DefaultThreads = 10
	MaxThreads     = 100
	DefaultSize    = 1024 * 1024
	DefaultRegion  = "us-east-1"
	DefaultBindIP  = "0.0.0.0"
	DefaultPort    = 8888
)

// ConfigError reports a missing or malformed command line argument.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Config holds everything needed for one standalone benchmark run. It is
// built once from the command line and never mutated afterwards.
type Config struct {
	Threads    int
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Region     string
	Bucket     string
	Prefix     string
	Size       uint64
	Operation  string
	Number     int
	Insecure   bool
	NoProgress bool
	JsonFile   string
	CsvFile    string
}

// ClientConfig holds the arguments of the (unimplemented) client mode.
type ClientConfig struct {
	ServerAddr string
}

// ServerConfig holds the arguments of the (unimplemented) server mode: the
// bind address plus the standalone parameters to forward to clients.
type ServerConfig struct {
	BindIP string
	Port   int
	Run    *Config
}

// runFlags collects the raw standalone arguments before validation. Every
// flag is registered under its short and long name.
type runFlags struct {
	threads    int
	endpoint   string
	accessKey  string
	secretKey  string
	region     string
	bucket     string
	prefix     string
	sizeArg    string
	operation  string
	number     int
	insecure   bool
	noProgress bool
	jsonFile   string
	csvFile    string
}

func registerRunFlags(fs *flag.FlagSet) *runFlags {
	rf := &runFlags{}
	fs.IntVar(&rf.threads, "t", DefaultThreads, "number of concurrent workers")
	fs.IntVar(&rf.threads, "threads", DefaultThreads, "number of concurrent workers")
	fs.StringVar(&rf.endpoint, "e", "", "http(s) URL of the storage service, or a local path for the filesystem backend")
	fs.StringVar(&rf.endpoint, "endpoint", "", "http(s) URL of the storage service, or a local path for the filesystem backend")
	fs.StringVar(&rf.accessKey, "k", "", "access key")
	fs.StringVar(&rf.accessKey, "key", "", "access key")
	fs.StringVar(&rf.secretKey, "s", "", "secret key")
	fs.StringVar(&rf.secretKey, "secret", "", "secret key")
	fs.StringVar(&rf.region, "r", DefaultRegion, "region to sign requests for")
	fs.StringVar(&rf.region, "region", DefaultRegion, "region to sign requests for")
	fs.StringVar(&rf.bucket, "b", "", "target bucket")
	fs.StringVar(&rf.bucket, "bucket", "", "target bucket")
	fs.StringVar(&rf.prefix, "p", "", "object key prefix")
	fs.StringVar(&rf.prefix, "prefix", "", "object key prefix")
	fs.StringVar(&rf.sizeArg, "sz", "", "object size, an integer with an optional K/M/G suffix (default 1M)")
	fs.StringVar(&rf.sizeArg, "size", "", "object size, an integer with an optional K/M/G suffix (default 1M)")
	fs.StringVar(&rf.operation, "o", "", "operation to measure, 'upload' or 'download'")
	fs.StringVar(&rf.operation, "operation", "", "operation to measure, 'upload' or 'download'")
	fs.IntVar(&rf.number, "n", 0, "number of objects")
	fs.IntVar(&rf.number, "number", 0, "number of objects")
	fs.BoolVar(&rf.insecure, "insecure", false, "skip TLS certificate verification")
	fs.BoolVar(&rf.noProgress, "no-progress", false, "disable the progress bar")
	fs.StringVar(&rf.jsonFile, "json", "", "save the results as .json file")
	fs.StringVar(&rf.csvFile, "csv", "", "save the results as .csv file")
	return rf
}

func (rf *runFlags) config() (*Config, error) {
	if rf.endpoint == "" {
		return nil, &ConfigError{Field: "endpoint", Reason: "required"}
	}
	if rf.accessKey == "" {
		return nil, &ConfigError{Field: "key", Reason: "required"}
	}
	if rf.secretKey == "" {
		return nil, &ConfigError{Field: "secret", Reason: "required"}
	}
	if rf.bucket == "" {
		return nil, &ConfigError{Field: "bucket", Reason: "required"}
	}
	switch rf.operation {
	case OperationUpload, OperationDownload:
	case "":
		return nil, &ConfigError{Field: "operation", Reason: "required"}
	default:
		return nil, &ConfigError{Field: "operation", Reason: fmt.Sprintf("must be %q or %q, got %q", OperationUpload, OperationDownload, rf.operation)}
	}
	if rf.number <= 0 {
		return nil, &ConfigError{Field: "number", Reason: "must be a positive integer"}
	}
	if rf.threads < 1 {
		return nil, &ConfigError{Field: "threads", Reason: "must be at least 1"}
	}
	if rf.threads > MaxThreads {
		return nil, &ConfigError{Field: "threads", Reason: fmt.Sprintf("must be at most %d", MaxThreads)}
	}

	size := uint64(DefaultSize)
	if rf.sizeArg != "" {
		var err error
		size, err = ParseSize(rf.sizeArg)
		if err != nil {
			return nil, &ConfigError{Field: "size", Reason: err.Error()}
		}
	}

	return &Config{
		Threads:    rf.threads,
		Endpoint:   rf.endpoint,
		AccessKey:  rf.accessKey,
		SecretKey:  rf.secretKey,
		Region:     rf.region,
		Bucket:     rf.bucket,
		Prefix:     rf.prefix,
		Size:       size,
		Operation:  rf.operation,
		Number:     rf.number,
		Insecure:   rf.insecure,
		NoProgress: rf.noProgress,
		JsonFile:   rf.jsonFile,
		CsvFile:    rf.csvFile,
	}, nil
}

// ParseStandalone validates the standalone mode arguments.
func ParseStandalone(args []string) (*Config, error) {
	fs := flag.NewFlagSet("standalone", flag.ContinueOnError)
	rf := registerRunFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return rf.config()
}

// ParseClient validates the client mode arguments.
func ParseClient(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	var server string
	fs.StringVar(&server, "s", "", "address of the benchmark server (host:port)")
	fs.StringVar(&server, "server", "", "address of the benchmark server (host:port)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if server == "" {
		return nil, &ConfigError{Field: "server", Reason: "required"}
	}
	return &ClientConfig{ServerAddr: server}, nil
}

// ParseServer validates the server mode arguments, including the standalone
// parameters that a server would forward to its clients.
func ParseServer(args []string) (*ServerConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	var bindIP string
	var port int
	fs.StringVar(&bindIP, "i", DefaultBindIP, "IP address to bind to")
	fs.StringVar(&bindIP, "ip", DefaultBindIP, "IP address to bind to")
	fs.IntVar(&port, "port", DefaultPort, "port to listen on")
	rf := registerRunFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if port < 1 || port > 65535 {
		return nil, &ConfigError{Field: "port", Reason: "must be between 1 and 65535"}
	}
	runCfg, err := rf.config()
	if err != nil {
		return nil, err
	}
	return &ServerConfig{BindIP: bindIP, Port: port, Run: runCfg}, nil
}

// ParseSize converts a size argument to bytes. A bare integer means raw
// bytes, the K/M/G suffixes are base-1024 multipliers.
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, nil
	}
	n, err := bytefmt.ToBytes(s)
	if err != nil {
		return 0, fmt.Errorf("parsing size %q: %w", s, err)
	}
	return n, nil
}
