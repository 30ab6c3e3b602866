package grpctest

import (
	"context"

	pb "github.com/openebs/mayastor-go/proto/mayastorpb"
)

// mayastorService serves the pool, replica and nexus methods against the
// in-memory node state.
type mayastorService struct {
	pb.UnimplementedMayastorServer

	node *node
}

func (s *mayastorService) CreatePool(ctx context.Context, req *pb.CreatePoolRequest) (*pb.Pool, error) {
	p, err := s.node.createPool(req.Name, req.Disks)
	if err != nil {
		return nil, err
	}

	return toPbPool(p), nil
}

func (s *mayastorService) DestroyPool(ctx context.Context, req *pb.DestroyPoolRequest) (*pb.Null, error) {
	s.node.destroyPool(req.Name)
	return &pb.Null{}, nil
}

func (s *mayastorService) ListPools(ctx context.Context, req *pb.Null) (*pb.ListPoolsReply, error) {
	pools := s.node.listPools()

	reply := &pb.ListPoolsReply{
		Pools: make([]*pb.Pool, 0, len(pools)),
	}

	for _, p := range pools {
		reply.Pools = append(reply.Pools, toPbPool(p))
	}

	return reply, nil
}

func (s *mayastorService) CreateReplica(ctx context.Context, req *pb.CreateReplicaRequest) (*pb.Replica, error) {
	r, err := s.node.createReplica(req.Uuid, req.Pool, req.Size, req.Thin, req.Share)
	if err != nil {
		return nil, err
	}

	return toPbReplica(r), nil
}

func (s *mayastorService) DestroyReplica(ctx context.Context, req *pb.DestroyReplicaRequest) (*pb.Null, error) {
	if err := s.node.destroyReplica(req.Uuid); err != nil {
		return nil, err
	}

	return &pb.Null{}, nil
}

func (s *mayastorService) ListReplicas(ctx context.Context, req *pb.Null) (*pb.ListReplicasReply, error) {
	replicas := s.node.listReplicas()

	reply := &pb.ListReplicasReply{
		Replicas: make([]*pb.Replica, 0, len(replicas)),
	}

	for _, r := range replicas {
		reply.Replicas = append(reply.Replicas, toPbReplica(r))
	}

	return reply, nil
}

func (s *mayastorService) CreateNexus(ctx context.Context, req *pb.CreateNexusRequest) (*pb.Nexus, error) {
	nx, err := s.node.createNexus(req.Uuid, req.Size, req.Children)
	if err != nil {
		return nil, err
	}

	return toPbNexus(nx), nil
}

func (s *mayastorService) DestroyNexus(ctx context.Context, req *pb.DestroyNexusRequest) (*pb.Null, error) {
	if err := s.node.destroyNexus(req.Uuid); err != nil {
		return nil, err
	}

	return &pb.Null{}, nil
}

func (s *mayastorService) ListNexus(ctx context.Context, req *pb.Null) (*pb.ListNexusReply, error) {
	nexuses := s.node.listNexus()

	reply := &pb.ListNexusReply{
		NexusList: make([]*pb.Nexus, 0, len(nexuses)),
	}

	for _, nx := range nexuses {
		reply.NexusList = append(reply.NexusList, toPbNexus(nx))
	}

	return reply, nil
}

func (s *mayastorService) PublishNexus(ctx context.Context, req *pb.PublishNexusRequest) (*pb.PublishNexusReply, error) {
	deviceURI, err := s.node.publishNexus(req.Uuid)
	if err != nil {
		return nil, err
	}

	return &pb.PublishNexusReply{DeviceUri: deviceURI}, nil
}

func (s *mayastorService) UnpublishNexus(ctx context.Context, req *pb.UnpublishNexusRequest) (*pb.Null, error) {
	if err := s.node.unpublishNexus(req.Uuid); err != nil {
		return nil, err
	}

	return &pb.Null{}, nil
}

// bdevService serves the low-level block device methods.
type bdevService struct {
	pb.UnimplementedBdevRpcServer

	node *node
}

func (s *bdevService) Create(ctx context.Context, req *pb.BdevUri) (*pb.CreateReply, error) {
	b, err := s.node.createBdev(req.Uri)
	if err != nil {
		return nil, err
	}

	return &pb.CreateReply{Name: b.name, Uri: b.uri}, nil
}

func (s *bdevService) Destroy(ctx context.Context, req *pb.BdevUri) (*pb.Null, error) {
	if err := s.node.destroyBdev(req.Uri); err != nil {
		return nil, err
	}

	return &pb.Null{}, nil
}

func (s *bdevService) List(ctx context.Context, req *pb.Null) (*pb.Bdevs, error) {
	bdevs := s.node.listBdevs()

	reply := &pb.Bdevs{
		Bdevs: make([]*pb.Bdev, 0, len(bdevs)),
	}

	for _, b := range bdevs {
		reply.Bdevs = append(reply.Bdevs, &pb.Bdev{
			Name:      b.name,
			NumBlocks: b.size / 512,
			BlkSize:   512,
			Uri:       b.uri,
			ShareUri:  b.shareURI,
		})
	}

	return reply, nil
}

func (s *bdevService) Share(ctx context.Context, req *pb.BdevShareRequest) (*pb.BdevShareReply, error) {
	uri, err := s.node.shareBdev(req.Name, req.Proto)
	if err != nil {
		return nil, err
	}

	return &pb.BdevShareReply{Uri: uri}, nil
}

func (s *bdevService) Unshare(ctx context.Context, req *pb.BdevShareRequest) (*pb.Null, error) {
	if err := s.node.unshareBdev(req.Name); err != nil {
		return nil, err
	}

	return &pb.Null{}, nil
}

func toPbPool(p *pool) *pb.Pool {
	return &pb.Pool{
		Name:     p.name,
		Disks:    append([]string(nil), p.disks...),
		State:    pb.PoolState_POOL_ONLINE,
		Capacity: p.capacity,
		Used:     p.used,
	}
}

func toPbReplica(r *replica) *pb.Replica {
	return &pb.Replica{
		Uuid:  r.uuid,
		Pool:  r.pool,
		Thin:  r.thin,
		Size:  r.size,
		Share: r.share,
		Uri:   r.uri,
	}
}

func toPbNexus(nx *nexus) *pb.Nexus {
	children := make([]*pb.Child, 0, len(nx.children))
	for _, uri := range nx.children {
		children = append(children, &pb.Child{Uri: uri, State: "open"})
	}

	return &pb.Nexus{
		Uuid:      nx.uuid,
		Size:      nx.size,
		State:     "online",
		Children:  children,
		DeviceUri: nx.deviceURI,
	}
}
