// Package grpcserver exposes the LibrarySync gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"
	"io"
	"time"

	pb "github.com/paperdock/librarysync/gen/go/librarysync/v1"
	"github.com/paperdock/librarysync/internal/convert"
	"github.com/paperdock/librarysync/internal/errs"
	"github.com/paperdock/librarysync/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// chunkSize is the fixed payload size for download streaming; the last
// chunk may be smaller.
const chunkSize = 64 * 1024

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedLibrarySyncServer
	sync service.SyncService
	docs service.DocumentService
}

// New constructs a gRPC server with injected services.
func New(sync service.SyncService, docs service.DocumentService) *Server {
	return &Server{sync: sync, docs: docs}
}

// mapErr translates service sentinel errors to gRPC status codes.
func mapErr(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrInvalidID), errors.Is(err, errs.ErrInvalidArgument):
		return status.Errorf(codes.InvalidArgument, "%v", err)
	case errors.Is(err, errs.ErrIntegrity):
		return status.Errorf(codes.DataLoss, "%v", err)
	case errors.Is(err, errs.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "invalid token")
	default:
		return status.Errorf(codes.Internal, "%v", err)
	}
}

// --- Sync ---

// Status reports server version, live entity counts and server time.
func (s *Server) Status(ctx context.Context, _ *pb.StatusRequest) (*pb.StatusResponse, error) {
	info, err := s.sync.Status(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &pb.StatusResponse{
		ServerVersion:   info.Version,
		DocumentCount:   info.Counts.Documents,
		AnnotationCount: info.Counts.Annotations,
		CollectionCount: info.Counts.Collections,
		TagCount:        info.Counts.Tags,
		ServerTime:      convert.FormatTime(info.ServerTime),
	}, nil
}

// Pull returns entities modified after the client's cursor, or a full
// snapshot when the cursor is empty.
func (s *Server) Pull(ctx context.Context, req *pb.PullRequest) (*pb.PullResponse, error) {
	var since *time.Time
	if raw := req.GetSince(); raw != "" {
		t, err := convert.ParseTime(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "since: %v", err)
		}
		since = &t
	}

	res, err := s.sync.Pull(ctx, since)
	if err != nil {
		return nil, mapErr(err)
	}

	docs, anns, colls, tags := convert.ToProtoChanges(res.Changes)
	return &pb.PullResponse{
		Documents:       docs,
		Annotations:     anns,
		Collections:     colls,
		Tags:            tags,
		Deletions:       convert.ToProtoDeletions(res.Deletions),
		ServerTimestamp: convert.FormatTime(res.ServerTime),
	}, nil
}

// Push applies a batch of client changes with last-write-wins conflict
// resolution, then the requested deletions.
func (s *Server) Push(ctx context.Context, req *pb.PushRequest) (*pb.PushResponse, error) {
	changes, err := convert.FromProtoChanges(
		req.GetDocuments(), req.GetAnnotations(), req.GetCollections(), req.GetTags())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	res, err := s.sync.Push(ctx, changes, convert.FromProtoDeletions(req.GetDeletions()))
	if err != nil {
		return nil, mapErr(err)
	}
	return &pb.PushResponse{
		Success:         len(res.Conflicts) == 0,
		Conflicts:       convert.ToProtoConflicts(res.Conflicts),
		ServerTimestamp: convert.FormatTime(res.ServerTime),
	}, nil
}

// PurgeDeleted permanently removes tombstones older than the cutoff.
func (s *Server) PurgeDeleted(ctx context.Context, req *pb.PurgeDeletedRequest) (*pb.PurgeDeletedResponse, error) {
	if req.GetBefore() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty cutoff")
	}
	before, err := convert.ParseTime(req.GetBefore())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "before: %v", err)
	}
	removed, err := s.sync.PurgeDeleted(ctx, before)
	if err != nil {
		return nil, mapErr(err)
	}
	return &pb.PurgeDeletedResponse{Removed: removed}, nil
}

// --- Documents ---

// GetDocument returns a single document by id, tombstones included.
func (s *Server) GetDocument(ctx context.Context, req *pb.GetDocumentRequest) (*pb.GetDocumentResponse, error) {
	doc, err := s.docs.Get(ctx, req.GetId())
	if err != nil {
		return nil, mapErr(err)
	}
	return &pb.GetDocumentResponse{Document: convert.ToProtoDocument(*doc)}, nil
}

// ListDocuments pages over the non-deleted document set.
func (s *Server) ListDocuments(ctx context.Context, req *pb.ListDocumentsRequest) (*pb.ListDocumentsResponse, error) {
	docs, total, err := s.docs.List(ctx, int(req.GetOffset()), int(req.GetLimit()))
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]*pb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, convert.ToProtoDocument(d))
	}
	return &pb.ListDocumentsResponse{Documents: out, TotalCount: int32(total)}, nil
}

// UpsertDocument creates or fully replaces one document.
func (s *Server) UpsertDocument(ctx context.Context, req *pb.UpsertDocumentRequest) (*pb.UpsertDocumentResponse, error) {
	doc, err := convert.FromProtoDocument(req.GetDocument())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	stored, created, err := s.docs.Upsert(ctx, doc)
	if err != nil {
		return nil, mapErr(err)
	}
	return &pb.UpsertDocumentResponse{
		Created:  created,
		Document: convert.ToProtoDocument(stored),
	}, nil
}

// DeleteDocument soft-deletes by default; hard_delete removes the row
// and its stored binary.
func (s *Server) DeleteDocument(ctx context.Context, req *pb.DeleteDocumentRequest) (*pb.DeleteDocumentResponse, error) {
	if err := s.docs.Delete(ctx, req.GetId(), req.GetHardDelete()); err != nil {
		return nil, mapErr(err)
	}
	return &pb.DeleteDocumentResponse{Success: true}, nil
}

// --- Binary transfer ---

// UploadBinary accumulates chunks after a leading metadata message and
// persists the file only when the digest checks out.
func (s *Server) UploadBinary(stream pb.LibrarySync_UploadBinaryServer) error {
	var (
		meta *pb.FileMetadata
		data []byte
	)
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return status.Errorf(codes.Internal, "recv: %v", err)
		}
		if m := req.GetMetadata(); m != nil {
			if meta != nil {
				return status.Error(codes.InvalidArgument, "duplicate metadata message")
			}
			meta = m
			continue
		}
		if meta == nil {
			return status.Error(codes.InvalidArgument, "chunk before metadata")
		}
		data = append(data, req.GetChunk()...)
	}
	if meta == nil {
		return status.Error(codes.InvalidArgument, "missing metadata message")
	}

	size, digest, err := s.docs.SaveBinary(stream.Context(), meta.GetDocumentId(), data, meta.GetDigest())
	if err != nil {
		return mapErr(err)
	}
	return stream.SendAndClose(&pb.UploadBinaryResponse{
		Success:       true,
		BytesReceived: size,
		Digest:        digest,
	})
}

// DownloadBinary sends a metadata message, then the content in fixed
// 64 KiB chunks.
func (s *Server) DownloadBinary(req *pb.DownloadBinaryRequest, stream pb.LibrarySync_DownloadBinaryServer) error {
	data, digest, err := s.docs.LoadBinary(stream.Context(), req.GetId())
	if err != nil {
		return mapErr(err)
	}

	err = stream.Send(&pb.DownloadBinaryResponse{
		Metadata: &pb.FileMetadata{
			DocumentId: req.GetId(),
			TotalSize:  int64(len(data)),
			Digest:     digest,
		},
	})
	if err != nil {
		return status.Errorf(codes.Internal, "send metadata: %v", err)
	}

	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		if err := stream.Send(&pb.DownloadBinaryResponse{Chunk: data[off:end]}); err != nil {
			return status.Errorf(codes.Internal, "send chunk: %v", err)
		}
	}
	return nil
}
