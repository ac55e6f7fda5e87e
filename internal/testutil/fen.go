package testutil

// FEN fixtures shared by the engine, search and game tests.
const (
	InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// Kiwipete exercises castling, en passant and promotions in few plies.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// CastlingFEN has both sides free to castle on either wing.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"

	// PromotionFEN has a white pawn one step from promotion.
	PromotionFEN = "8/P6k/8/8/8/8/8/K7 w - - 0 1"

	// FoolsMateFEN is checkmate with White to move.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// StalemateFEN is stalemate with Black to move.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)
