package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/openebs/mayastor-go/nodeclient"
)

var errUsage = errors.New(
	"usage: [bdev|pool|replica|nexus] <subcommand> [args] or 'target'")

// createUUID returns the uuid given on the command line, or a fresh one.
func createUUID() string {
	if opts.UUID != "" {
		return opts.UUID
	}

	return uuid.New().String()
}

func parseSizeMB(arg string) (uint64, error) {
	mb, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", arg, err)
	}

	return mb << 20, nil
}

func runCommand(ctx context.Context, h *nodeclient.Handle, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	if args[0] == "target" {
		fmt.Println(h.AsTarget())
		return nil
	}

	if len(args) < 2 {
		return errUsage
	}

	switch args[0] {
	case "bdev":
		return runBdev(ctx, h, args[1], args[2:])
	case "pool":
		return runPool(ctx, h, args[1], args[2:])
	case "replica":
		return runReplica(ctx, h, args[1], args[2:])
	case "nexus":
		return runNexus(ctx, h, args[1], args[2:])
	}

	return errUsage
}

func runBdev(ctx context.Context, h *nodeclient.Handle, cmd string, args []string) error {
	switch {
	case cmd == "list":
		bdevs, err := h.ListBlockDevices(ctx)
		if err != nil {
			return err
		}

		for _, b := range bdevs {
			fmt.Printf("%s\t%s\t%s\n", b.Name, b.URI, b.ShareURI)
		}

		return nil

	case cmd == "create" && len(args) == 1:
		uri, err := h.CreateBlockDevice(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Println(uri)

		return nil

	case cmd == "destroy" && len(args) == 1:
		return h.DestroyBlockDevice(ctx, args[0])

	case cmd == "share" && len(args) >= 1:
		proto := "nvmf"
		if len(args) > 1 {
			proto = args[1]
		}

		uri, err := h.ShareBlockDevice(ctx, args[0], proto)
		if err != nil {
			return err
		}

		fmt.Println(uri)

		return nil

	case cmd == "unshare" && len(args) == 1:
		return h.UnshareBlockDevice(ctx, args[0])
	}

	return errUsage
}

func runPool(ctx context.Context, h *nodeclient.Handle, cmd string, args []string) error {
	switch {
	case cmd == "list":
		pools, err := h.ListPools(ctx)
		if err != nil {
			return err
		}

		for _, p := range pools {
			fmt.Printf("%s\t%d\t%d\n", p.Name, p.Capacity, p.Used)
		}

		return nil

	case cmd == "uris":
		uris, err := h.PoolURIs(ctx)
		if err != nil {
			return err
		}

		for _, uri := range uris {
			fmt.Println(uri)
		}

		return nil

	case cmd == "create" && len(args) == 2:
		pool, err := h.CreatePool(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s\t%d\n", pool.Name, pool.Capacity)

		return nil

	case cmd == "destroy" && len(args) == 1:
		return h.DestroyPool(ctx, args[0])
	}

	return errUsage
}

func runReplica(ctx context.Context, h *nodeclient.Handle, cmd string, args []string) error {
	switch {
	case cmd == "list":
		replicas, err := h.ListReplicas(ctx)
		if err != nil {
			return err
		}

		for _, r := range replicas {
			fmt.Printf("%s\t%s\t%d\t%s\n", r.UUID, r.Pool, r.Size, r.URI)
		}

		return nil

	case cmd == "create" && len(args) == 2:
		size, err := parseSizeMB(args[1])
		if err != nil {
			return err
		}

		replica, err := h.CreateReplica(ctx, args[0], createUUID(), size)
		if err != nil {
			return err
		}

		fmt.Printf("%s\t%s\n", replica.UUID, replica.URI)

		return nil

	case cmd == "destroy" && len(args) == 1:
		return h.DestroyReplica(ctx, args[0])
	}

	return errUsage
}

func runNexus(ctx context.Context, h *nodeclient.Handle, cmd string, args []string) error {
	switch {
	case cmd == "list":
		nexuses, err := h.ListNexus(ctx)
		if err != nil {
			return err
		}

		for _, nx := range nexuses {
			fmt.Printf("%s\t%s\t%d\t%s\n", nx.UUID, nx.State, nx.Size, nx.DeviceURI)
		}

		return nil

	case cmd == "create" && len(args) >= 2:
		size, err := parseSizeMB(args[0])
		if err != nil {
			return err
		}

		nexus, err := h.CreateNexus(ctx, createUUID(), size, args[1:])
		if err != nil {
			return err
		}

		fmt.Println(nexus.UUID)

		return nil

	case cmd == "destroy" && len(args) == 1:
		return h.DestroyNexus(ctx, args[0])

	case cmd == "publish" && len(args) == 1:
		deviceURI, err := h.PublishNexus(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Println(deviceURI)

		return nil

	case cmd == "unpublish" && len(args) == 1:
		return h.UnpublishNexus(ctx, args[0])
	}

	return errUsage
}
