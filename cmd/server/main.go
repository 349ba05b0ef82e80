package main

import (
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/vskvj3/vessel/internal/core"
	"github.com/vskvj3/vessel/internal/network"
	"github.com/vskvj3/vessel/internal/rpc"
	"github.com/vskvj3/vessel/internal/utils"
)

func main() {
	// Parse command-line arguments
	configPtr := flag.String("config", "", "Path to the config file (default ~/.vessel/vessel.yaml)")
	portPtr := flag.String("port", "", "Port of the TCP server")
	grpcPortPtr := flag.String("grpc_port", "", "Port of the gRPC server (default port+1000)")
	debugPtr := flag.Bool("debug", false, "Print debug logs to the console")
	flag.Parse()

	// Load configurations
	configPath := *configPtr
	if configPath == "" {
		path, err := utils.DefaultConfigPath()
		if err != nil {
			utils.GetLogger().Error("Error locating config: " + err.Error())
			os.Exit(1)
		}
		configPath = path
	}
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		utils.GetLogger().Error("Error loading configuration: " + err.Error())
		os.Exit(1)
	}

	logger := utils.NewLogger(config.LogFile, config.Debug || *debugPtr)
	logger.Info("Loaded configurations from " + configPath)

	// Flags override the config file
	port := strconv.Itoa(config.TCPPort)
	grpcPort := strconv.Itoa(config.GRPCPort)
	if *portPtr != "" {
		tcp, err := strconv.Atoi(*portPtr)
		if err != nil {
			logger.Error("Port must be an integer: " + err.Error())
			os.Exit(1)
		}
		port = *portPtr
		grpcPort = strconv.Itoa(tcp + 1000)
	}
	if *grpcPortPtr != "" {
		grpcPort = *grpcPortPtr
	}
	logger.Info("Port assigned: " + port + ", gRPC port: " + grpcPort)

	handler := core.NewCommandHandler(core.NewStore(config.DefaultCapacity, config.MaxCapacity))

	server, err := network.NewServer(handler, port)
	if err != nil {
		logger.Error("Server creation failed: " + err.Error())
		os.Exit(1)
	}
	grpcServer := rpc.NewGRPCServer(handler)

	errs := make(chan error, 2)
	go func() { errs <- server.Start() }()
	go func() { errs <- rpc.Serve(grpcServer, grpcPort) }()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		logger.Info("Received " + sig.String() + ", shutting down")
	case err := <-errs:
		if err != nil {
			logger.Error("Server stopped: " + err.Error())
		}
	}

	grpcServer.GracefulStop()
	if err := server.Close(); err != nil {
		logger.Warn("Error closing TCP server: " + err.Error())
	}
	logger.Info("Server stopped")
}
