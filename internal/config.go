package internal

import (
	"flag"
	"os"
)

var c *config

const (
	RunAddress = "RUN_ADDRESS"
	OrdersFile = "ORDERS_FILE"
)

const (
	defaultRunAddress = "localhost:8080"
	defaultOrdersFile = "orders.json"
)

type config struct {
	RunAddress string
	OrdersFile string
}

func NewConfig() *config {
	c = new(config)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.OrdersFile, "f", setEnvOrDefault(OrdersFile, defaultOrdersFile), "path to the orders snapshot file")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
